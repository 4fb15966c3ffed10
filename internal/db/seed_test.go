package db_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oggyb/jobmatch/internal/db"
	"github.com/oggyb/jobmatch/internal/testutil"
)

func rows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

func TestSeedTestData(t *testing.T) {
	gdb := testutil.NewDB(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, db.SeedTestData(gdb, log))

	assert.Equal(t, int64(4), rows(t, gdb, &db.City{}))
	assert.Equal(t, int64(3), rows(t, gdb, &db.Category{}))
	assert.Equal(t, int64(5), rows(t, gdb, &db.Company{}))
	assert.Equal(t, int64(15), rows(t, gdb, &db.JobAd{}))
	assert.Equal(t, int64(20), rows(t, gdb, &db.JobApplication{}))
	assert.Positive(t, rows(t, gdb, &db.Match{}))

	var companies []db.Company
	require.NoError(t, gdb.Find(&companies).Error)
	for _, c := range companies {
		var ads int64
		require.NoError(t, gdb.Model(&db.JobAd{}).Where("company_id = ?", c.ID).Count(&ads).Error)
		assert.Equal(t, int64(c.ActiveJobCount), ads, c.Username)
	}

	var pro db.Professional
	require.NoError(t, gdb.Where("username = ?", "pro1").First(&pro).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(pro.PasswordHash), []byte("password")))

	var accepted int64
	require.NoError(t, gdb.Model(&db.Match{}).Where("status = ?", db.MatchAccepted).Count(&accepted).Error)
	assert.Zero(t, accepted)
}

func TestSeedTestData_Rerun(t *testing.T) {
	gdb := testutil.NewDB(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, db.SeedTestData(gdb, log))
	first := rows(t, gdb, &db.Match{})

	require.NoError(t, db.SeedTestData(gdb, log))
	assert.Equal(t, int64(5), rows(t, gdb, &db.Company{}))
	assert.Equal(t, first, rows(t, gdb, &db.Match{}))
}
