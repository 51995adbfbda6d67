package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/testutil"
)

func TestRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(testutil.NewDB(t))

	faq := &models.Faq{ClassificationCode: "S1", Question: "How do I recall?", Answer: "Use the recall menu."}
	require.NoError(t, repos.Faqs.Save(ctx, faq))
	require.NotZero(t, faq.ID)
	assert.False(t, faq.CreatedAt.IsZero())
	assert.False(t, faq.UpdatedAt.IsZero())

	found, err := repos.Faqs.FindByID(ctx, faq.ID)
	require.NoError(t, err)
	assert.Equal(t, "How do I recall?", found.Question)

	created := found.CreatedAt
	time.Sleep(10 * time.Millisecond)
	found.Answer = "Open the recall page."
	require.NoError(t, repos.Faqs.Save(ctx, found))

	updated, err := repos.Faqs.FindByID(ctx, faq.ID)
	require.NoError(t, err)
	assert.Equal(t, "Open the recall page.", updated.Answer)
	assert.True(t, updated.UpdatedAt.After(created))

	require.NoError(t, repos.Faqs.Save(ctx, &models.Faq{Question: "q2", Answer: "a2"}))
	all, err := repos.Faqs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := repos.Faqs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repos.Faqs.Delete(ctx, faq.ID))
	_, err = repos.Faqs.FindByID(ctx, faq.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repos.Faqs.Delete(ctx, faq.ID), ErrNotFound)
}
