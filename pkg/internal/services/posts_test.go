package services

import (
	"strings"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	resetDatabase(t)
	author := createTestUser(t, "writer")
	group := createTestGroup(t, "books")

	t.Run("With group", func(t *testing.T) {
		item, err := NewPost(author, "  A story about books  ", &group)
		require.NoError(t, err)
		assert.NotZero(t, item.ID)
		assert.Equal(t, "A story about books", item.Text)
		assert.WithinDuration(t, time.Now(), item.PubDate, 5*time.Second)

		stored, err := GetPost(database.C, item.ID)
		require.NoError(t, err)
		assert.Equal(t, author.ID, stored.Author.ID)
		require.NotNil(t, stored.Group)
		assert.Equal(t, "books", stored.Group.Slug)
	})

	t.Run("Without group", func(t *testing.T) {
		item, err := NewPost(author, "Ungrouped", nil)
		require.NoError(t, err)

		stored, err := GetPost(database.C, item.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.GroupID)
		assert.Nil(t, stored.Group)
	})

	t.Run("Empty text", func(t *testing.T) {
		before, err := CountPost(database.C)
		require.NoError(t, err)

		_, err = NewPost(author, "   \n\t", nil)
		assert.ErrorIs(t, err, ErrEmptyPostText)

		after, err := CountPost(database.C)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestEditPost(t *testing.T) {
	resetDatabase(t)
	author := createTestUser(t, "editor")
	humor := createTestGroup(t, "humor")
	animals := createTestGroup(t, "animals")

	item, err := NewPost(author, "Original", &humor)
	require.NoError(t, err)

	t.Run("Change text and group", func(t *testing.T) {
		_, err := EditPost(item, "Changed", &animals)
		require.NoError(t, err)

		stored, err := GetPost(database.C, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Changed", stored.Text)
		require.NotNil(t, stored.GroupID)
		assert.Equal(t, animals.ID, *stored.GroupID)
		assert.Equal(t, author.ID, stored.AuthorID)
		assert.WithinDuration(t, item.PubDate, stored.PubDate, time.Second)
	})

	t.Run("Clear group", func(t *testing.T) {
		_, err := EditPost(item, "No group anymore", nil)
		require.NoError(t, err)

		stored, err := GetPost(database.C, item.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.GroupID)

		for _, group := range []models.Group{humor, animals} {
			items, err := ListPost(FilterPostWithGroup(database.C, group), 10, 0)
			require.NoError(t, err)
			assert.Empty(t, items)
		}
	})

	t.Run("Empty text keeps record", func(t *testing.T) {
		_, err := EditPost(item, "", nil)
		assert.ErrorIs(t, err, ErrEmptyPostText)

		stored, err := GetPost(database.C, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "No group anymore", stored.Text)
	})
}

func TestListPostOrder(t *testing.T) {
	resetDatabase(t)
	author := createTestUser(t, "orderer")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{Text: "oldest", PubDate: base, AuthorID: author.ID},
		{Text: "tie-a", PubDate: base.Add(time.Hour), AuthorID: author.ID},
		{Text: "tie-b", PubDate: base.Add(time.Hour), AuthorID: author.ID},
		{Text: "newest", PubDate: base.Add(2 * time.Hour), AuthorID: author.ID},
	}
	for i := range posts {
		require.NoError(t, database.C.Create(&posts[i]).Error)
	}

	items, err := ListPost(database.C, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 4)

	texts := []string{items[0].Text, items[1].Text, items[2].Text, items[3].Text}
	assert.Equal(t, []string{"newest", "tie-b", "tie-a", "oldest"}, texts)
}

func TestPostFilters(t *testing.T) {
	resetDatabase(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	auto := createTestGroup(t, "auto")
	serials := createTestGroup(t, "serials")

	for _, entry := range []struct {
		author models.User
		group  *models.Group
	}{
		{alice, &auto},
		{alice, &serials},
		{alice, nil},
		{bob, &auto},
	} {
		_, err := NewPost(entry.author, "Filter me", entry.group)
		require.NoError(t, err)
	}

	count, err := CountPost(FilterPostWithGroup(database.C, auto))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = CountPost(FilterPostWithGroup(database.C, serials))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = CountAuthorPost(alice)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	items, err := ListPost(FilterPostWithAuthor(database.C, bob), 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, bob.ID, items[0].AuthorID)
}

func TestTruncatePost(t *testing.T) {
	assert.Equal(t, "short", TruncatePostTitle("short"))
	assert.Equal(t, strings.Repeat("ж", 29), TruncatePostTitle(strings.Repeat("ж", 40)))

	long := models.Post{Text: strings.Repeat("a", 200)}
	assert.Equal(t, strings.Repeat("a", 160)+"...", TruncatePostContent(long).Text)
	assert.Equal(t, "tiny", TruncatePostContent(models.Post{Text: "tiny"}).Text)
}
