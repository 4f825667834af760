package platform

// Package platform contains OS/platform integration: the file-selection
// boundary (accepted types, turning a picked file into an upload descriptor)
// and opening an uploaded file with the system viewer.
