// Package navigation tracks the list cursor and the active route
package navigation

// Cursor tracks the selected row by ID so it survives filter and sort changes
type Cursor struct {
	ItemID        string // Primary state: selected item ID
	FallbackIndex int    // Row to use when ItemID is no longer listed
}

// Index computes the cursor's row in ids. Returns -1 for an empty list.
func (c *Cursor) Index(ids []string) int {
	if len(ids) == 0 {
		return -1
	}
	for i, id := range ids {
		if id == c.ItemID {
			return i
		}
	}
	// Item filtered out or never set: clamp the fallback row
	return min(max(c.FallbackIndex, 0), len(ids)-1)
}

// Current returns the selected ID in ids, or "" for an empty list
func (c *Cursor) Current(ids []string) string {
	idx := c.Index(ids)
	if idx < 0 {
		return ""
	}
	return ids[idx]
}

// Set points the cursor at a specific item
func (c *Cursor) Set(id string, index int) {
	c.ItemID = id
	c.FallbackIndex = index
}

// Move shifts the cursor by delta rows, clamped to the list, and returns the new ID
func (c *Cursor) Move(ids []string, delta int) string {
	idx := c.Index(ids)
	if idx < 0 {
		return c.ItemID
	}
	next := min(max(idx+delta, 0), len(ids)-1)
	c.Set(ids[next], next)
	return c.ItemID
}

// JumpToStart moves to the first row
func (c *Cursor) JumpToStart(ids []string) string {
	if len(ids) > 0 {
		c.Set(ids[0], 0)
	}
	return c.ItemID
}

// JumpToEnd moves to the last row
func (c *Cursor) JumpToEnd(ids []string) string {
	if len(ids) > 0 {
		c.Set(ids[len(ids)-1], len(ids)-1)
	}
	return c.ItemID
}
