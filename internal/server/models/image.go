package models

import "time"

// ImageUpload describes a presigned object-storage upload for an animal
// image. The client PUTs the file to UploadURL and stores ImageURL in the
// animal's imagenUrl.
type ImageUpload struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ImageURL  string    `json:"image_url"`
	ExpiresAt time.Time `json:"expires_at"`
}
