package consts

const (
	RoleReader = "READER"
	RoleWriter = "WRITER"
	RoleAdmin  = "ADMIN"
)

const (
	// RatingMin RatingMax 社区评分取值范围
	RatingMin = 1
	RatingMax = 5
)

const (
	NotificationTypeRating  int8 = 1
	NotificationTypeComment int8 = 2
)
