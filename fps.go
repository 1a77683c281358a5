package lantern

// frameCounter counts frames over one-second windows.
type frameCounter struct {
	frames  int
	elapsed float64
	fps     int
}

// tick records one frame lasting dt seconds. When a full second has passed
// it returns the number of frames in that second.
func (f *frameCounter) tick(dt float64) (int, bool) {
	f.frames++
	f.elapsed += dt
	if f.elapsed < 1 {
		return f.fps, false
	}
	f.fps = f.frames
	f.frames = 0
	f.elapsed -= 1
	if f.elapsed >= 1 {
		f.elapsed = 0
	}
	return f.fps, true
}
