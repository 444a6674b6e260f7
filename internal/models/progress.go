package models

type Stage string

const (
	StageConnectionEstablished Stage = "CONNECTION_ESTABLISHED"
	StageExtractingText        Stage = "EXTRACTING_TEXT"
	StageProcessingCV          Stage = "PROCESSING_CV"
	StageGeneratingCoverLetter Stage = "GENERATING_COVER_LETTER"
	StageZippingFiles          Stage = "ZIPPING_FILES"
	StageSavingFile            Stage = "SAVING_FILE"
	StageDownloadReady         Stage = "DOWNLOAD_READY"
	StageError                 Stage = "ERROR"
)

// ProgressEvent is one unit of the ordered status stream pushed to the
// client while a generation run advances. Data carries the download token
// on DOWNLOAD_READY and is null everywhere else.
type ProgressEvent struct {
	Stage   Stage   `json:"stage"`
	Message string  `json:"message"`
	Data    *string `json:"data"`
}

func NewProgressEvent(stage Stage, message string) ProgressEvent {
	return ProgressEvent{Stage: stage, Message: message}
}

func NewDownloadReadyEvent(fileName, token string) ProgressEvent {
	return ProgressEvent{Stage: StageDownloadReady, Message: fileName, Data: &token}
}
