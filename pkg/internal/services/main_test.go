package services

import (
	"os"
	"testing"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	viper.Set("database.dialect", "sqlite")
	viper.Set("database.dsn", "file::memory:?_pragma=foreign_keys(1)")
	viper.Set("posts.page_size", DefaultPostPageSize)

	if err := database.NewGorm(); err != nil {
		panic(err)
	} else if err := database.RunMigration(database.C); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func resetDatabase(t *testing.T) {
	t.Helper()

	tx := database.C.Session(&gorm.Session{AllowGlobalUpdate: true})
	require.NoError(t, tx.Delete(&models.Post{}).Error)
	require.NoError(t, tx.Delete(&models.Group{}).Error)
	require.NoError(t, tx.Delete(&models.User{}).Error)
}

func createTestUser(t *testing.T, name string) models.User {
	t.Helper()

	user, err := NewAccount(name, "", name+"@example.com", "correct-horse")
	require.NoError(t, err)
	return user
}

func createTestGroup(t *testing.T, slug string) models.Group {
	t.Helper()

	group, err := NewGroup(slug, "Test group "+slug)
	require.NoError(t, err)
	return group
}
