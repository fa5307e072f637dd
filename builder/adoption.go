package builder

import (
	"github.com/kasuga-html/htmltree/domns"
	"github.com/kasuga-html/htmltree/perr"
	"github.com/kasuga-html/htmltree/token"
)

// runAdoptionAgency implements the adoption agency algorithm (spec.md
// §4.4, bounded at 8 outer and 3 inner iterations), ported from the
// teacher's adoptionAgency and generalized onto Ref/arena/Sink: every
// step that reparented a live *dom.Element directly now goes through
// Sink.AppendChild/InsertBefore (which detach-and-reattach) or
// Sink.MoveChildren.
func (b *Builder) runAdoptionAgency(loc token.Location, subject string) {
	if cur := b.current(); cur != noRef {
		e := b.arena.get(cur)
		if e.local == subject && !e.isActiveFormatting {
			b.stack.popUntilPopped(cur)
			return
		}
	}

	for outer := 0; outer < 8; outer++ {
		formattingRef, formattingListIdx, ok := b.fmtList.findByName(subject)
		if !ok {
			return
		}

		stackIdx := b.stack.indexOf(formattingRef)
		if stackIdx < 0 {
			b.report(loc, perr.AdoptionAgencyParseError)
			b.fmtList.removeElement(formattingRef)
			return
		}

		if !b.stack.hasElementInScope(scopeDefault, subject) {
			b.report(loc, perr.AdoptionAgencyParseError)
			return
		}

		if formattingRef != b.current() {
			b.report(loc, perr.AdoptionAgencyParseError)
		}

		var furthestBlock Ref = noRef
		furthestIdx := -1
		for i := stackIdx + 1; i < b.stack.len(); i++ {
			r := b.stack.at(i)
			if isSpecial(b.arena.get(r)) {
				furthestBlock = r
				furthestIdx = i
				break
			}
		}

		if furthestBlock == noRef {
			b.stack.popUntilPopped(formattingRef)
			b.fmtList.removeElement(formattingRef)
			return
		}

		bookmark := formattingListIdx + 1

		node := furthestBlock
		nodeIdx := furthestIdx
		lastNode := furthestBlock

		for inner := 1; ; inner++ {
			nodeIdx--
			if nodeIdx < 0 {
				return
			}
			node = b.stack.at(nodeIdx)
			if node == formattingRef {
				break
			}

			nodeFmtIdx := b.fmtList.indexOf(node)
			if inner > 3 && nodeFmtIdx >= 0 {
				b.fmtList.removeElement(node)
				if nodeFmtIdx < bookmark {
					bookmark--
				}
				nodeFmtIdx = -1
			}

			if nodeFmtIdx < 0 {
				b.stack.remove(node)
				continue
			}

			newRef := b.cloneElement(node)
			b.fmtList.replace(node, newRef)
			b.stack.replace(node, newRef)
			node = newRef

			if lastNode == furthestBlock {
				bookmark = b.fmtList.indexOf(newRef) + 1
			}
			b.sink.AppendChild(b.arena.get(lastNode).node, b.arena.get(node).node)
			lastNode = node
		}

		commonAncestorRef := b.stack.at(stackIdx - 1)
		commonAncestor := b.arena.get(commonAncestorRef)
		if commonAncestor.ns == domns.HTML && tableFosterTargets[commonAncestor.local] {
			b.fosterParenting = true
			parent, before, hasBefore := b.fosterInsertionLocation()
			if hasBefore {
				b.sink.InsertBefore(b.arena.get(lastNode).node, parent, before)
			} else {
				b.sink.AppendChild(b.arena.get(lastNode).node, parent)
			}
			b.fosterParenting = false
		} else {
			b.sink.AppendChild(b.arena.get(lastNode).node, commonAncestor.node)
		}

		newFormattingRef := b.cloneElement(formattingRef)
		b.sink.MoveChildren(b.arena.get(furthestBlock).node, b.arena.get(newFormattingRef).node)
		b.sink.AppendChild(b.arena.get(newFormattingRef).node, b.arena.get(furthestBlock).node)

		b.fmtList.removeElement(formattingRef)
		if bookmark < 0 {
			bookmark = 0
		}
		b.fmtList.insertAt(clampBookmark(bookmark, b.fmtList), newFormattingRef)

		b.stack.remove(formattingRef)
		newFurthestIdx := b.stack.indexOf(furthestBlock)
		b.stack.insertAfter(b.stack.at(newFurthestIdx), newFormattingRef)
	}
}

func clampBookmark(bookmark int, f *formattingList) int {
	if bookmark > len(f.entries) {
		return len(f.entries)
	}
	return bookmark
}

// cloneElement creates a fresh arena entry (and Sink node) that
// duplicates r's tag/namespace/attributes, used by the adoption
// agency's "create an element" steps; the resulting node is not yet
// attached anywhere.
func (b *Builder) cloneElement(r Ref) Ref {
	e := b.arena.get(r)
	node := b.sink.CreateElement(e.ns, e.prefix, e.local, e.attrs)
	return b.arena.create(e.ns, e.prefix, e.local, e.attrs, node)
}
