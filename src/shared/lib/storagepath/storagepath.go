package storagepath

import (
	"fmt"
	"strings"
)

// Generator builds object URLs of the form {host}/{bucket}/{path}
type Generator struct {
	Host   string
	Bucket string
}

func (g Generator) GeneratePath(segments ...string) string {
	trimmed := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.Trim(segment, "/")
		if segment != "" {
			trimmed = append(trimmed, segment)
		}
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(g.Host, "/"), g.Bucket, strings.Join(trimmed, "/"))
}

// ObjectName is the inverse of GeneratePath for URLs in this generator's bucket
func (g Generator) ObjectName(url string) (string, bool) {
	prefix := fmt.Sprintf("%s/%s/", strings.TrimSuffix(g.Host, "/"), g.Bucket)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	name := strings.TrimPrefix(url, prefix)
	return name, name != ""
}

// Resolve turns a bucket-relative object path into a full URL and leaves
// absolute URLs, protocol-relative URLs and site-rooted paths untouched
func (g Generator) Resolve(path string) string {
	if path == "" ||
		strings.HasPrefix(path, "/") ||
		strings.Contains(path, "://") {
		return path
	}

	return g.GeneratePath(path)
}
