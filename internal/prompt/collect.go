package prompt

// Collect answers the catalog from a prepared answer set, the same way an
// interactive prompter would: hidden questions are dropped, defined answers are
// validated against the answers accepted so far and then filtered. Keys of
// given that are not questions (such as NameID) are kept as seeds.
func Collect(c Catalog, given Answers) (Answers, error) {
	out := make(Answers, len(given))
	for k, v := range given {
		if _, ok := c.Find(k); !ok {
			out[k] = v
		}
	}

	for _, q := range c {
		if !q.Visible(out) {
			continue
		}
		value, ok := given[q.Name]
		if !ok || value == nil {
			continue
		}
		if err := q.Check(value, out); err != nil {
			return nil, err
		}
		out[q.Name] = q.Apply(value)
	}
	return out, nil
}
