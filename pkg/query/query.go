// pkg/query/query.go
package query

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/jrx4d/cartwheel/pkg/locator"
)

// Query resolves locators against a live browser session under explicit
// wait policies. It is the synchronization primitive every page object
// builds on: one bounded poll loop per call, no retries beyond it.
type Query struct {
	logger   *zap.Logger
	standard WaitPolicy
	short    WaitPolicy
}

// New creates a Query with the given wait presets.
func New(logger *zap.Logger, standard, short WaitPolicy) *Query {
	return &Query{
		logger:   logger.Named("query"),
		standard: standard,
		short:    short,
	}
}

// Standard returns the preset used for most interactions.
func (q *Query) Standard() WaitPolicy { return q.standard }

// Short returns the preset used for optional, likely absent elements.
func (q *Query) Short() WaitPolicy { return q.short }

// ResolveOne polls until the locator resolves to a visible element or the
// policy timeout elapses, whichever comes first. On timeout it fails with
// ElementNotFoundError carrying the locator and elapsed time.
func (q *Query) ResolveOne(ctx context.Context, loc locator.Locator, policy WaitPolicy) (Handle, error) {
	nodes, err := q.poll(ctx, loc, policy, condVisible)
	if err != nil {
		return Handle{}, err
	}
	return NewHandle(nodes[0]), nil
}

// ResolveClickable polls until the locator resolves to a visible, enabled
// element, suitable for actions rather than reads.
func (q *Query) ResolveClickable(ctx context.Context, loc locator.Locator, policy WaitPolicy) (Handle, error) {
	nodes, err := q.poll(ctx, loc, policy, condClickable)
	if err != nil {
		return Handle{}, err
	}
	return NewHandle(nodes[0]), nil
}

// ResolveAll waits for the anchor to become visible, then snapshots every
// present match of loc in a single pass. The anchor is the enclosing
// container or a fixed page landmark: once it has settled the collection
// is read as-is, with no minimum count, because collections such as "all
// cart items" may legitimately be empty. Zero matches is an empty slice;
// only a timeout of the anchor itself is an ElementNotFoundError.
func (q *Query) ResolveAll(ctx context.Context, anchor, loc locator.Locator, policy WaitPolicy) ([]Handle, error) {
	if _, err := q.poll(ctx, anchor, policy, condVisible); err != nil {
		return nil, err
	}

	nodes, err := q.snapshot(ctx, loc)
	if err != nil {
		return nil, err
	}
	handles := make([]Handle, len(nodes))
	for i, n := range nodes {
		handles[i] = NewHandle(n)
	}
	return handles, nil
}

// ResolveOptional resolves under the short policy and converts a timeout
// into an explicit absence instead of an error. This is how "cart badge
// missing on an empty cart" is distinguished from a real failure; it must
// only be used where the element legitimately may not exist.
func (q *Query) ResolveOptional(ctx context.Context, loc locator.Locator) (Handle, bool, error) {
	nodes, err := q.poll(ctx, loc, q.short, condVisible)
	if err != nil {
		var notFound *ElementNotFoundError
		if errors.As(err, &notFound) {
			q.logger.Debug("optional element absent",
				zap.String("locator", loc.String()),
				zap.Duration("elapsed", notFound.Elapsed),
			)
			return Handle{}, false, nil
		}
		return Handle{}, false, err
	}
	return NewHandle(nodes[0]), true, nil
}

type condition int

const (
	condVisible condition = iota
	condClickable
)

// poll runs the single bounded wait loop. Each pass snapshots the current
// matches without waiting, then checks the first match against the
// condition through the page's own layout state.
func (q *Query) poll(ctx context.Context, loc locator.Locator, policy WaitPolicy, cond condition) ([]*cdp.Node, error) {
	start := time.Now()
	deadline := start.Add(policy.Timeout)

	ticker := time.NewTicker(policy.PollInterval)
	defer ticker.Stop()

	for {
		nodes, err := q.snapshot(ctx, loc)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Transient query failures (mid-navigation document swaps)
			// count as "not there yet" until the deadline.
			q.logger.Debug("snapshot failed, continuing poll",
				zap.String("locator", loc.String()), zap.Error(err))
		} else if len(nodes) > 0 {
			ok, condErr := q.meets(ctx, nodes[0], cond)
			if condErr == nil && ok {
				return nodes, nil
			}
		}

		if time.Now().After(deadline) {
			return nil, &ElementNotFoundError{Locator: loc, Elapsed: time.Since(start)}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// snapshot fetches whatever currently matches the locator, without waiting.
func (q *Query) snapshot(ctx context.Context, loc locator.Locator) ([]*cdp.Node, error) {
	var nodes []*cdp.Node
	err := chromedp.Run(ctx,
		chromedp.Nodes(loc.Query(), &nodes, loc.QueryOption(), chromedp.AtLeast(0)),
	)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// meets evaluates the interactability condition against the live page.
func (q *Query) meets(ctx context.Context, node *cdp.Node, cond condition) (bool, error) {
	check := "s.display!=='none'&&s.visibility!=='hidden'&&el.getClientRects().length>0"
	if cond == condClickable {
		check += "&&!el.disabled"
	}
	script := "(function(){const el=document.evaluate(" + strconv.Quote(node.FullXPath()) +
		",document,null,XPathResult.FIRST_ORDERED_NODE_TYPE,null).singleNodeValue;" +
		"if(!el){return false;}const s=window.getComputedStyle(el);return " + check + ";})()"

	var ok bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(script, &ok)); err != nil {
		return false, err
	}
	return ok, nil
}
