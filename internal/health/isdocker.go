package health

import "os"

// IsDocker returns true if the isdocker marker file, created in
// the container image, is present in the working directory.
func IsDocker() (ok bool) {
	_, err := os.Stat("isdocker")
	return err == nil
}
