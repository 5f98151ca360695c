package internal

// MaxTreeDepth is the maximum nesting depth of a reply tree. Descendants
// below this depth are attached flat under the node at the limit.
const MaxTreeDepth = 5

// ThreadNode is one message plus its ordered child nodes
type ThreadNode struct {
	Message  *Message
	Children []*ThreadNode
}

// BuildTree turns a flat set of finalized messages into a bounded-depth
// reply tree. It is pure and stateless: nodes hold no reference back to
// any ThreadState and are owned solely by the caller.
//
// A message is a root if it has no parent or if its parent is absent
// from the input set; orphans are promoted rather than dropped. Sibling
// groups are sorted chronologically. Once nesting reaches MaxTreeDepth,
// all remaining transitive descendants of that node are attached as a
// single flat, chronologically sorted list of leaf children.
func BuildTree(messages []*Message) []*ThreadNode {
	byID := make(map[string]*Message, len(messages))
	for _, msg := range messages {
		byID[msg.ID] = msg
	}

	children := make(map[string][]*Message)
	var roots []*Message
	for _, msg := range messages {
		if msg.ReplyTo == "" {
			roots = append(roots, msg)
			continue
		}
		if _, ok := byID[msg.ReplyTo]; !ok {
			// Orphan promotion: the parent is missing from the snapshot.
			roots = append(roots, msg)
			continue
		}
		children[msg.ReplyTo] = append(children[msg.ReplyTo], msg)
	}

	sortMessages(roots)
	nodes := make([]*ThreadNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, buildNode(root, children, 1))
	}
	return nodes
}

// buildNode builds the subtree rooted at msg, depth-first. depth is
// 1-based from the tree roots.
func buildNode(msg *Message, children map[string][]*Message, depth int) *ThreadNode {
	node := &ThreadNode{Message: msg}

	if depth >= MaxTreeDepth {
		for _, descendant := range collectDescendants(msg.ID, children) {
			node.Children = append(node.Children, &ThreadNode{Message: descendant})
		}
		return node
	}

	group := append([]*Message(nil), children[msg.ID]...)
	sortMessages(group)
	for _, child := range group {
		node.Children = append(node.Children, buildNode(child, children, depth+1))
	}
	return node
}

// CountNodes returns the total number of nodes in a tree, the roots
// included
func CountNodes(nodes []*ThreadNode) int {
	total := 0
	for _, node := range nodes {
		total += 1 + CountNodes(node.Children)
	}
	return total
}
