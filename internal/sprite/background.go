package sprite

// Compositor flattens an ordered list of background images into a single
// surface. The first layer becomes the base; every later layer is drawn over
// it, stretched to the base size.
type Compositor struct {
	surface *Image
	layers  int
}

// AddLayer composites img onto the background. The first image is cloned so
// the caller's copy is never modified. Nil images are ignored.
func (c *Compositor) AddLayer(img *Image) {
	if img == nil {
		return
	}
	if c.surface == nil {
		c.surface = img.Clone()
		c.surface.Name = "background"
		c.layers = 1
		return
	}
	c.surface.Draw(img, c.surface.Bounds())
	c.layers++
}

// Surface returns the composed image, nil before the first layer.
func (c *Compositor) Surface() *Image {
	return c.surface
}

// Layers returns how many images have been composited.
func (c *Compositor) Layers() int {
	return c.layers
}

// Reset discards the composed surface.
func (c *Compositor) Reset() {
	c.surface = nil
	c.layers = 0
}
