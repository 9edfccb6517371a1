//go:build !amd64 && !arm64

package zp7

func detectFeatures() Features {
	// Other architectures run the portable paths. math/bits.OnesCount64
	// may still be intrinsified on some of them (e.g. ppc64), but the
	// SWAR fallback is never wrong, only slower.
	return Features{}
}
