package es

import (
	"Wayfarer/internal/pkg/util"
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/conflicts"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type ArticleRepo interface {
	SearchArticles(ctx context.Context, queryText string, from, size int) ([]*ArticleES, error)
	GetArticlesByTag(ctx context.Context, tag string, from, size int) ([]*ArticleES, error)
	GetLatestArticles(ctx context.Context, from, size int) ([]*ArticleES, error)
	IndexArticle(ctx context.Context, article *ArticleES, version int64) error
	DeleteArticle(ctx context.Context, id uint64) error
	UpdateRatingAggregate(ctx context.Context, articleID uint64, avgRating float64, ratingsCount int64) error
}

type ArticleRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewArticleRepo(client *elasticsearch.TypedClient) ArticleRepo {
	return &ArticleRepoImpl{client: client}
}

// SearchArticles 关键词检索：标题加权高于正文与标签
func (s *ArticleRepoImpl) SearchArticles(ctx context.Context, queryText string, from, size int) ([]*ArticleES, error) {
	if from >= MaxSearchDepth {
		return []*ArticleES{}, nil
	}

	req := s.client.Search().Index(ArticleIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Should: []types.Query{
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:  queryText,
							Fields: []string{"title^3", "content^1", "tags^2"},
							Boost:  util.PtrFloat32(2.0),
						},
					},
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:     queryText,
							Fields:    []string{"title", "content"},
							Fuzziness: util.PtrStr("AUTO"),
							Boost:     util.PtrFloat32(0.5),
						},
					},
				},
			},
		}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

// GetArticlesByTag 按标签名精确匹配，按发布时间倒序
func (s *ArticleRepoImpl) GetArticlesByTag(ctx context.Context, tag string, from, size int) ([]*ArticleES, error) {
	req := s.client.Search().
		Index(ArticleIndex).
		Query(&types.Query{
			Term: map[string]types.TermQuery{
				"tags": {Value: tag},
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"created_at": {Order: &sortorder.Desc},
		}}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

// GetLatestArticles 获取最新发布的文章列表
func (s *ArticleRepoImpl) GetLatestArticles(ctx context.Context, from, size int) ([]*ArticleES, error) {
	req := s.client.Search().
		Index(ArticleIndex).
		Query(&types.Query{
			MatchAll: &types.MatchAllQuery{},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"created_at": {Order: &sortorder.Desc},
		}}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

// IndexArticle 以更新时间戳作外部版本号，旧文档写入直接忽略
func (s *ArticleRepoImpl) IndexArticle(ctx context.Context, article *ArticleES, version int64) error {
	docID := strconv.FormatUint(article.ID, 10)

	_, err := s.client.Index(ArticleIndex).
		Id(docID).
		Document(article).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *ArticleRepoImpl) DeleteArticle(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(ArticleIndex, docID).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

// UpdateRatingAggregate 定时任务回填评分聚合字段
func (s *ArticleRepoImpl) UpdateRatingAggregate(ctx context.Context, articleID uint64, avgRating float64, ratingsCount int64) error {
	avgJSON, _ := json.Marshal(avgRating)
	countJSON, _ := json.Marshal(ratingsCount)

	params := map[string]json.RawMessage{
		"avg_rating":    json.RawMessage(avgJSON),
		"ratings_count": json.RawMessage(countJSON),
	}

	scriptSource := "ctx._source.avg_rating = params.avg_rating; ctx._source.ratings_count = params.ratings_count;"

	req := s.client.UpdateByQuery(ArticleIndex).
		Query(&types.Query{
			Term: map[string]types.TermQuery{
				"id": {Value: articleID},
			},
		}).
		Script(&types.Script{
			Source: &scriptSource,
			Params: params,
		}).
		Conflicts(conflicts.Proceed)

	_, err := req.Do(ctx)
	return err
}

func (s *ArticleRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*ArticleES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ArticleES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var article ArticleES
		if hit.Source_ == nil {
			continue
		}
		if err = json.Unmarshal(hit.Source_, &article); err != nil {
			continue
		}
		if len(hit.Sort) > 0 {
			article.Sort = make([]interface{}, len(hit.Sort))
			for i, v := range hit.Sort {
				article.Sort[i] = v
			}
		}
		results = append(results, &article)
	}
	return results, nil
}
