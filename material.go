package topo

// Material identifies the substance occupying a grid cell. Ids are small
// non-negative integers, unique per name within one Canvas. Id 0 is always
// the ambient material the canvas was created with.
type Material int

// Ambient is the id of the background material every canvas starts
// filled with.
const Ambient Material = 0

// Material returns the id registered for name, allocating the next id in
// first-use order if the name has not been seen on this canvas before.
// Ids are never reused or renumbered for the lifetime of the canvas.
func (c *Canvas) Material(name string) Material {
	if m, ok := c.index[name]; ok {
		return m
	}
	m := Material(len(c.names))
	c.index[name] = m
	c.names = append(c.names, name)
	return m
}

// MaterialName returns the name registered for m, or "" if m has not been
// allocated on this canvas.
func (c *Canvas) MaterialName(m Material) string {
	if m < 0 || int(m) >= len(c.names) {
		return ""
	}
	return c.names[m]
}

// Materials returns the number of materials registered on the canvas,
// including the ambient material.
func (c *Canvas) Materials() int {
	return len(c.names)
}
