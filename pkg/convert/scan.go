package convert

// LikelyScanned reports whether a page looks like a scanned image:
// no extractable words but at least one embedded image. The flag is a
// hint for the user, never load-bearing, so any extraction failure
// counts as "not scanned".
func LikelyScanned(p PageSource) bool {
	words, err := p.ExtractWords()
	if err != nil || len(words) > 0 {
		return false
	}
	images, err := p.ImageCount()
	if err != nil {
		return false
	}
	return images > 0
}
