package model

// PostPage is one bounded slice of an ordered post listing plus the metadata
// the list template needs to draw pagination controls.
type PostPage struct {
	Posts      []*Post `json:"posts"`
	Number     int     `json:"number"`
	TotalPages int     `json:"total_pages"`
	TotalPosts int     `json:"total_posts"`
}

func (p *PostPage) HasPrev() bool {
	return p.Number > 1
}

func (p *PostPage) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p *PostPage) PrevPage() int {
	if p.HasPrev() {
		return p.Number - 1
	}
	return p.Number
}

func (p *PostPage) NextPage() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}
