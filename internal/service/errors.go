package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUserBan              = errors.New("用户已被封禁")
	ErrUserExist            = errors.New("用户已存在")
	ErrUserEmailExist       = errors.New("邮箱已注册")
	ErrPasswordIncorrect    = errors.New("密码错误")
	ErrRoleNotFound         = errors.New("角色不存在")
	ErrTagNotFound          = errors.New("标签不存在")
	ErrArticleNotFound      = errors.New("文章不存在")
	ErrArticleNotOwned      = errors.New("无权操作他人文章")
	ErrSlugExist            = errors.New("slug已存在")
	ErrCommentNotFound      = errors.New("评论不存在")
	ErrRatingOutOfRange     = errors.New("评分必须在1到5之间")
	ErrRateOwnArticle       = errors.New("不能给自己的文章评分")
	ErrDestinationNotFound  = errors.New("目的地不存在")
	ErrContinentNotFound    = errors.New("大洲不存在")
	ErrNotificationNotFound = errors.New("通知不存在")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserBan:              Unauthorized,
	ErrUserExist:            BadRequest,
	ErrUserEmailExist:       BadRequest,
	ErrPasswordIncorrect:    Unauthorized,
	ErrRoleNotFound:         NotFound,
	ErrTagNotFound:          NotFound,
	ErrArticleNotFound:      NotFound,
	ErrArticleNotOwned:      Unauthorized,
	ErrSlugExist:            BadRequest,
	ErrCommentNotFound:      NotFound,
	ErrRatingOutOfRange:     BadRequest,
	ErrRateOwnArticle:       BadRequest,
	ErrDestinationNotFound:  NotFound,
	ErrContinentNotFound:    NotFound,
	ErrNotificationNotFound: NotFound,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
