package catalog

// PageStep is the initial visible count and the load-more increment.
const PageStep = 12

// Pager is the load-more cursor: the storefront always renders the first
// Visible() results of the current query. The cursor deliberately survives
// filter, search and sort changes, matching the storefront's behaviour.
type Pager struct {
	visible int
}

func NewPager() *Pager {
	return &Pager{visible: PageStep}
}

func (p *Pager) Visible() int {
	return p.visible
}

func (p *Pager) LoadMore() {
	p.visible += PageStep
}

// Slice returns the currently visible prefix of the result list.
func (p *Pager) Slice(views []View) []View {
	return Window(views, p.visible)
}

// Window clamps a raw visible count and slices the list. Counts below one
// fall back to PageStep.
func Window(views []View, visible int) []View {
	if visible < 1 {
		visible = PageStep
	}
	if visible > len(views) {
		visible = len(views)
	}
	return views[:visible]
}
