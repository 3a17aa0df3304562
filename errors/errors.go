package errors

import "fmt"

var (
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet requirements")
	ErrChannelNotFound    = fmt.Errorf("channel not found")
	ErrMemberNotFound     = fmt.Errorf("user not found in the channel")
	ErrAlreadyMember      = fmt.Errorf("user already in the channel")
	ErrContentTooLong     = fmt.Errorf("message content too long")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)
