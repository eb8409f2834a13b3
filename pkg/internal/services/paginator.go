package services

import (
	"errors"
	"strconv"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const DefaultPostPageSize = 10

// PostPageSize reads posts.page_size and falls back to DefaultPostPageSize.
func PostPageSize() int {
	if size := viper.GetInt("posts.page_size"); size > 0 {
		return size
	}
	return DefaultPostPageSize
}

type Page[T any] struct {
	Items    []T   `json:"items"`
	Number   int   `json:"number"`
	NumPages int   `json:"num_pages"`
	PerPage  int   `json:"per_page"`
	Count    int64 `json:"count"`
}

func (v Page[T]) HasNext() bool {
	return v.Number < v.NumPages
}

func (v Page[T]) HasPrevious() bool {
	return v.Number > 1
}

func (v Page[T]) HasOtherPages() bool {
	return v.HasNext() || v.HasPrevious()
}

func (v Page[T]) NextPageNumber() int {
	return v.Number + 1
}

func (v Page[T]) PreviousPageNumber() int {
	return v.Number - 1
}

// Offset is the index of the first item of the page in the whole sequence.
func (v Page[T]) Offset() int {
	return (v.Number - 1) * v.PerPage
}

// ResolvePageNumber turns the raw page query value into a page number within [1, pages].
// Missing or malformed values mean the first page, out of range values mean the last one,
// including numbers too large for an int.
func ResolvePageNumber(raw string, count int64, perPage int) (number int, pages int) {
	if perPage <= 0 {
		perPage = DefaultPostPageSize
	}

	pages = int((count + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		return pages, pages
	} else if err != nil {
		return 1, pages
	}
	if number < 1 || number > pages {
		return pages, pages
	}
	return number, pages
}

// Paginate slices an already ordered sequence.
func Paginate[T any](items []T, perPage int, raw string) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPostPageSize
	}

	number, pages := ResolvePageNumber(raw, int64(len(items)), perPage)
	page := Page[T]{
		Number:   number,
		NumPages: pages,
		PerPage:  perPage,
		Count:    int64(len(items)),
	}

	start := min(page.Offset(), len(items))
	end := min(start+perPage, len(items))
	page.Items = items[start:end]

	return page
}

// PaginatePost counts the filtered posts and loads the requested page of them.
func PaginatePost(tx *gorm.DB, raw string) (Page[models.Post], error) {
	tx = tx.Session(&gorm.Session{})
	perPage := PostPageSize()

	count, err := CountPost(tx)
	if err != nil {
		return Page[models.Post]{}, err
	}

	number, pages := ResolvePageNumber(raw, count, perPage)
	page := Page[models.Post]{
		Number:   number,
		NumPages: pages,
		PerPage:  perPage,
		Count:    count,
	}

	if page.Items, err = ListPost(tx, perPage, page.Offset()); err != nil {
		return page, err
	}

	return page, nil
}
