package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login success"
	MessageSuccessGetProfile      = "profile retrieved successfully"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessForgotPassword  = "password reset email sent"
	MessageSuccessResetPassword   = "password reset successfully"
	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetProfile       = "failed to retrieve profile"
	MessageFailedUpdateUser       = "failed to update user"
	MessageFailedSendVerifyEmail  = "failed to send verification email"
	MessageFailedVerifyEmail      = "failed to verify email"
	MessageFailedForgotPassword   = "failed to send password reset email"
	MessageFailedResetPassword    = "failed to reset password"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrCredentialsInvalid     = errors.New("invalid email or password")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrEmailAlreadyVerified   = errors.New("email already verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UpdateUserRequest struct {
		Name   string                `json:"name" form:"name" validate:"omitempty"`
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"omitempty"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Email        string     `json:"email"`
		Role         string     `json:"role"`
		IsVerified   bool       `json:"is_verified"`
		IsPremium    bool       `json:"is_premium"`
		PremiumSince *time.Time `json:"premium_since,omitempty"`
		AvatarURL    string     `json:"avatar_url,omitempty"`
	}
)
