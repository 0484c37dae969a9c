package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Lowercase      *bool `json:"lowercase"`
	Uppercase      *bool `json:"uppercase"`
	Digits         *bool `json:"digits"`
	Special        *bool `json:"special"`
	AvoidAmbiguous bool  `json:"avoid_ambiguous"`

	RequireAllTypes *bool `json:"require_all_types"`
	MinDigits       *int  `json:"min_digits"`
	MinSpecial      *int  `json:"min_special"`
}

// GenerateResponse represents a single generated password with its
// strength metadata.
type GenerateResponse struct {
	Password string  `json:"password"`
	Length   int     `json:"length"`
	Entropy  float64 `json:"entropy_bits"`
	Score    int     `json:"score"`
	Strength string  `json:"strength"`
}

// BulkGenerateRequest represents a bulk generation request: Count
// independent passwords from one option set.
type BulkGenerateRequest struct {
	Count   int             `json:"count"`
	Options GenerateRequest `json:"options"`
}

// BulkGenerateResponse represents a bulk generation response.
type BulkGenerateResponse struct {
	Count     int                `json:"count"`
	Passwords []GenerateResponse `json:"passwords"`
}

// PatternGenerateRequest represents a pattern-driven generation request.
// Pattern codes: 'l' lowercase, 'U' uppercase, 'n' digit, 's' special.
type PatternGenerateRequest struct {
	Pattern string `json:"pattern"`
}

// AssessRequest represents a security assessment request for an
// externally supplied password.
type AssessRequest struct {
	Password string `json:"password"`
}

// AssessResponse represents a security assessment result.
type AssessResponse struct {
	Score             int     `json:"score"`
	Strength          string  `json:"strength"`
	Entropy           float64 `json:"entropy_bits"`
	CrackTimeSeconds  float64 `json:"crack_time_seconds"`
	CrackTime         string  `json:"crack_time"`
	HasWeakPattern    bool    `json:"has_weak_pattern"`
	HasDictionaryWord bool    `json:"has_dictionary_word"`
	IsDuplicate       bool    `json:"is_duplicate"`
}
