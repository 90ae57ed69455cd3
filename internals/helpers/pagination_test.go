package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagingFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusNoContent)
	})
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	return got
}

func TestResolvePaging(t *testing.T) {
	p := pagingFor(t, "/items?page=3&per_page=10", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
	assert.Equal(t, 10, p.Limit)

	// defaults and clamping
	p = pagingFor(t, "/items", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)

	p = pagingFor(t, "/items?page=-2&per_page=9999", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	// ?limit= is accepted as an alias
	p = pagingFor(t, "/items?limit=5", 20, 100)
	assert.Equal(t, 5, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	out := BuildPagination(p, 25, 10)

	assert.Equal(t, int64(25), out.Total)
	assert.Equal(t, 3, out.TotalPages)
	assert.True(t, out.HasNext)
	assert.True(t, out.HasPrev)
	assert.Equal(t, 10, out.Count)

	last := BuildPagination(Paging{Page: 3, PerPage: 10}, 25, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}
