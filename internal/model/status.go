package model

// JobStatus represents the status of a download job
type JobStatus string

const (
	// JobStatusPending means the job is created but no stream has been requested yet
	JobStatusPending JobStatus = "Pending"

	// JobStatusDownloading means one or more streams are being downloaded
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusConverting means the external media tool is running
	JobStatusConverting JobStatus = "Converting"

	// JobStatusCompleted means the output file was produced
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is doing work
func (js JobStatus) IsActive() bool {
	return js == JobStatusDownloading || js == JobStatusConverting
}
