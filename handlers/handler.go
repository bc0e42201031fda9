package handlers

import (
	"github.com/andrewpaige1/studynote-api/logger"
	"github.com/andrewpaige1/studynote-api/media"
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
	Log   *logger.Logger
	Media *media.Store
}

func ptr[T any](v T) *T { return &v }
