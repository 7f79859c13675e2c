package main

// ChallengeOutput is printed as one JSON line per generated captcha.
type ChallengeOutput struct {
	UUID   string `json:"uuid"`
	Answer string `json:"answer"`
	File   string `json:"file,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Image  string `json:"image,omitempty"` // Base64 PNG
}
