package ppu

import "github.com/thelolagemann/gblite/pkg/utils"

// render produces a frame and hands it to the surface. The PPU stops when
// the surface has been closed or fails to draw.
func (p *PPU) render() {
	if !p.IsRunning() {
		return
	}

	p.renderGradient()

	p.surface.PollEvents()
	if !p.surface.IsOpen() {
		p.Log.Infof("display closed, stopping ppu")
		p.Stop()
		return
	}
	if err := p.surface.Draw(p.frame); err != nil {
		p.Log.Errorf("drawing frame: %v", err)
		p.Stop()
		return
	}
	p.frames++
}

// renderGradient fills the frame with a placeholder horizontal gradient,
// black on the left edge.
func (p *PPU) renderGradient() {
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			intensity := uint8(utils.Clamp(0, x*255/ScreenWidth, 255))
			i := (y*ScreenWidth + x) * 3
			p.frame[i] = intensity
			p.frame[i+1] = intensity
			p.frame[i+2] = intensity
		}
	}
}
