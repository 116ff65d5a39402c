package api

import "time"

// Animal mirrors the server's catalog entry.
type Animal struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Tipo         string    `json:"tipo"`
	Descripcion  string    `json:"descripcion"`
	WikipediaURL string    `json:"wikipediaUrl"`
	ImagenURL    string    `json:"imagenUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewAnimal is the create request body.
type NewAnimal struct {
	Nombre       string `json:"nombre"`
	Tipo         string `json:"tipo"`
	Descripcion  string `json:"descripcion"`
	WikipediaURL string `json:"wikipediaUrl"`
	ImagenURL    string `json:"imagenUrl"`
}

// ImageUpload is a presigned upload slot returned by the server.
type ImageUpload struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ImageURL  string    `json:"image_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Me identifies the logged-in user.
type Me struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type errorResponse struct {
	Error string `json:"error"`
}
