package services

import "errors"

var (
	// ErrModelNotReady is returned when a generation request references a
	// model that does not exist or has not finished training.
	ErrModelNotReady = errors.New("model not found or not trained yet")

	// ErrPackNotFound is returned when a pack generation request references
	// an unknown pack.
	ErrPackNotFound = errors.New("pack not found")
)
