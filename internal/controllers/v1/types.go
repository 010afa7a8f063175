// Package v1 implements the v1 API of the Pennywise backend.
package v1

import (
	pw_uuid "github.com/pennywise-app/backend/internal/uuid"
)

type URIID struct {
	ID pw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month string `uri:"month" binding:"required" example:"2024-08"` // Year and month in YYYY-MM format
}
