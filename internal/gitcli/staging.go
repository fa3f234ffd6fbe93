package gitcli

// WithStaged stages paths, runs fn, and unstages again on every exit path.
// This is the bracketing discipline the release workflow relies on: a
// staging inspection must never leak staged state into the next stage.
func (c *Client) WithStaged(paths []string, fn func() error) (err error) {
	if err := c.Add(paths...); err != nil {
		return err
	}
	defer func() {
		restoreErr := c.RestoreStaged()
		if err == nil {
			err = restoreErr
		}
	}()
	return fn()
}
