package model

import "time"

// Reflection represents a prompt/answer journal entry in the database.
type Reflection struct {
	ID        int64
	UserID    int64
	Prompt    string
	Answer    string
	CreatedAt time.Time
}

// CreateReflectionRequest represents a reflection capture request.
type CreateReflectionRequest struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// CreateReflectionResponse echoes the stored reflection back to the client.
type CreateReflectionResponse struct {
	ID     int64  `json:"id"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// ReflectionItem represents a single reflection in a list response.
type ReflectionItem struct {
	ID        int64     `json:"id"`
	Prompt    string    `json:"prompt"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// ReflectionListResponse represents a list of reflections, newest first.
type ReflectionListResponse struct {
	Items []ReflectionItem `json:"items"`
}
