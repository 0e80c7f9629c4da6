package models

type ProcessAudioResponse struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	Success    bool   `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}
