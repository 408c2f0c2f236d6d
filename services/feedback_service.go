package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/utils"
	"gorm.io/gorm"
)

type FeedbackInput struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment"`
	Source       string `json:"source" validate:"omitempty,oneof=web chatbot"`
}

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// SubmitFeedback -> source kosong dianggap "web"
func (s *FeedbackService) SubmitFeedback(ctx context.Context, input FeedbackInput) (*models.Feedback, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Source = strings.TrimSpace(input.Source)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Source == "" {
		input.Source = models.FeedbackSourceWeb
	}

	feedback := models.Feedback{
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		Source:       input.Source,
	}
	if err := s.db.WithContext(ctx).Create(&feedback).Error; err != nil {
		return nil, unavailable("failed to save feedback", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"feedback_id": feedback.ID,
		"rating":      feedback.Rating,
		"source":      feedback.Source,
	}).Info("feedback received")
	return &feedback, nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&feedbacks).Error; err != nil {
		return nil, unavailable("failed to list feedback", err)
	}
	return feedbacks, nil
}
