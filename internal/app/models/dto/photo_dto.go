package dto

// UploadTargetRequest asks where a student photo should be uploaded.
type UploadTargetRequest struct {
	StudentOpenEMISID string `json:"studentOpenEmisId" binding:"required"`
}

// UploadTargetResponse tells the client where to send the photo bytes.
type UploadTargetResponse struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Bucket string `json:"bucket"`
}

// PhotoResponse reports the stored photo location.
type PhotoResponse struct {
	Success  bool   `json:"success"`
	PhotoURL string `json:"photoUrl"`
}
