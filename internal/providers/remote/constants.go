package remote

import "time"

const (
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 8 << 20
	errorSnippetBytes  = 512
)
