package services

import (
	"testing"

	"github.com/GermanChai/germanchai/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuService(t *testing.T) *MenuService {
	db := newTestDB(t)
	seedMenuItem(t, db, "Masala Chai", "Chai", 4000, true)
	seedMenuItem(t, db, "Kesar Chai", "Chai", 6000, false)
	seedMenuItem(t, db, "Samosa", "Snacks", 3000, true)
	seedMenuItem(t, db, "Vada Pav", "Snacks", 5000, true)
	return NewMenuService(repository.NewMenuRepository(db), "http://localhost:8000")
}

func TestMenuList_GroupedByCategory(t *testing.T) {
	svc := newMenuService(t)

	groups, err := svc.List("")
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "Chai", groups[0].Category)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Snacks", groups[1].Category)
	assert.Len(t, groups[1].Items, 2)
}

func TestMenuList_UnavailableItemsStayListed(t *testing.T) {
	svc := newMenuService(t)

	groups, err := svc.List("")
	require.NoError(t, err)

	var found, available bool
	for _, g := range groups {
		for _, it := range g.Items {
			if it.Name == "Kesar Chai" {
				found, available = true, it.Available
			}
		}
	}
	assert.True(t, found)
	assert.False(t, available)
}

func TestMenuList_Search(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantItems int
	}{
		{name: "by_name", query: "chai", wantItems: 2},
		{name: "case_insensitive", query: "SAMOSA", wantItems: 1},
		{name: "whitespace_trimmed", query: "  vada  ", wantItems: 1},
		{name: "no_match", query: "pizza", wantItems: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := newMenuService(t)

			groups, err := svc.List(testCase.query)
			require.NoError(t, err)

			n := 0
			for _, g := range groups {
				n += len(g.Items)
			}
			assert.Equal(t, testCase.wantItems, n)
		})
	}
}

func TestMenu_UploadImage(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Masala Chai", "Chai", 4000, true)
	svc := NewMenuService(repository.NewMenuRepository(db), "http://localhost:8000")

	// 1x1 transparent png
	dataURL := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

	url, err := svc.UploadImage(item.ID, dataURL)
	require.NoError(t, err)
	assert.Contains(t, url, "/menu/")

	data, contentType, err := svc.Image(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.NotEmpty(t, data)
}

func TestMenu_UploadImageRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Masala Chai", "Chai", 4000, true)
	svc := NewMenuService(repository.NewMenuRepository(db), "http://localhost:8000")

	_, err := svc.UploadImage(item.ID, "not-a-data-url")
	assert.Error(t, err)
}
