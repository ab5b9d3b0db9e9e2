package core

import (
	mock "github.com/stretchr/testify/mock"
)

// NewPermissiveLogger returns a MockLogger that accepts any log call at any level
func NewPermissiveLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogger {
	m := NewMockLogger(t)
	m.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}
