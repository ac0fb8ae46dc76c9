package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> class default)
// and explicit false. Lowercase letters are always included and have no field.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Special   *bool `json:"special"`
}

// GenerateResponse represents a generated password with its strength.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Score    int    `json:"score"`
	Label    string `json:"label"`
}

// BatchRequest represents a request for multiple passwords sharing one
// set of generation options.
type BatchRequest struct {
	Count int `json:"count"`
	GenerateRequest
}

// BatchResponse represents an ordered list of generated passwords.
type BatchResponse struct {
	Passwords []GenerateResponse `json:"passwords"`
	Count     int                `json:"count"`
}
