package model

// StrengthRequest represents a strength evaluation request for an
// arbitrary password, generated here or not.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries the heuristic score and label plus an advisory
// zxcvbn estimate (0-4).
type StrengthResponse struct {
	Score    int    `json:"score"`
	Label    string `json:"label"`
	Estimate int    `json:"estimate"`
}

// HashRequest represents a password hashing request.
type HashRequest struct {
	Password string `json:"password"`
}

// HashResponse carries a PHC-encoded Argon2id hash.
type HashResponse struct {
	Hash string `json:"hash"`
}

// VerifyRequest represents a hash verification request.
type VerifyRequest struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

// VerifyResponse reports whether a password matched a hash.
type VerifyResponse struct {
	Match bool `json:"match"`
}
