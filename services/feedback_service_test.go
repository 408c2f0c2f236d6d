package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/testutil"
)

func TestSubmitFeedback(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := services.NewFeedbackService(db)

	tests := []struct {
		name       string
		input      services.FeedbackInput
		wantErr    bool
		wantSource string
	}{
		{
			name:       "default source is web",
			input:      services.FeedbackInput{CustomerName: "Alice", Rating: 5, Comment: "Lovely"},
			wantSource: models.FeedbackSourceWeb,
		},
		{
			name:       "chatbot source",
			input:      services.FeedbackInput{CustomerName: "Chat User", Rating: 1, Source: "chatbot"},
			wantSource: models.FeedbackSourceChatbot,
		},
		{
			name:    "rating too low",
			input:   services.FeedbackInput{CustomerName: "Alice", Rating: 0},
			wantErr: true,
		},
		{
			name:    "rating too high",
			input:   services.FeedbackInput{CustomerName: "Alice", Rating: 6},
			wantErr: true,
		},
		{
			name:    "missing name",
			input:   services.FeedbackInput{Rating: 3},
			wantErr: true,
		},
		{
			name:    "unknown source",
			input:   services.FeedbackInput{CustomerName: "Alice", Rating: 3, Source: "sms"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := svc.SubmitFeedback(ctx, tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, services.ErrValidation), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, fb.ID)
			assert.Equal(t, tt.wantSource, fb.Source)
		})
	}
}

func TestListFeedbackNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := services.NewFeedbackService(db)

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.SubmitFeedback(ctx, services.FeedbackInput{CustomerName: name, Rating: 4})
		require.NoError(t, err)
	}

	list, err := svc.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].CustomerName)
	assert.Equal(t, "first", list[2].CustomerName)
}
