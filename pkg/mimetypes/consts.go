package mimetypes

// Well-known MIME types. Plain constants for callers that compare against
// resolved types; the table itself does not depend on them.
const (
	ApplicationGzip        = "application/gzip"
	ApplicationJSON        = "application/json"
	ApplicationOctetStream = "application/octet-stream"
	ApplicationPDF         = "application/pdf"
	ApplicationXML         = "application/xml"
	ApplicationZip         = "application/zip"

	AudioMpeg = "audio/mpeg"
	AudioOgg  = "audio/ogg"
	AudioWav  = "audio/x-wav"

	ImageGIF  = "image/gif"
	ImageJPEG = "image/jpeg"
	ImagePNG  = "image/png"
	ImageSVG  = "image/svg+xml"
	ImageWebP = "image/webp"

	TextCSS      = "text/css"
	TextCSV      = "text/csv"
	TextHTML     = "text/html"
	TextMarkdown = "text/markdown"
	TextPlain    = "text/plain"

	VideoMP4  = "video/mp4"
	VideoMpeg = "video/mpeg"
	VideoOgg  = "video/ogg"
	VideoWebM = "video/webm"
)

// DefaultFallbackMimeType is returned for file names with no registered
// suffix unless overridden via SetFallbackMimeType.
const DefaultFallbackMimeType = ApplicationOctetStream

// Category prefixes used by the Is* predicates.
const (
	prefixVideo = "video/"
	prefixAudio = "audio/"
	prefixImage = "image/"
	prefixText  = "text/"
)
