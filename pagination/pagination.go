// Package pagination implements page-number pagination with a
// count/next/previous/results envelope.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// Params reads page and page_size from the query string, clamping to sane bounds.
func Params(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Paginate counts the query, loads the requested page into results and builds
// the response envelope. The caller keeps ordering on the query.
func Paginate(c *gin.Context, query *gorm.DB, results any) (*Page, error) {
	page, pageSize := Params(c)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(results).Error; err != nil {
		return nil, err
	}

	p := &Page{Count: count, Results: results}
	if int64(page*pageSize) < count {
		p.Next = pageURL(c, page+1, pageSize)
	}
	if page > 1 {
		p.Previous = pageURL(c, page-1, pageSize)
	}
	return p, nil
}

func pageURL(c *gin.Context, page, pageSize int) *string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
