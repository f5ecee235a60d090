package diagram

import (
	"fmt"
	"strings"
)

// Header directives understood by the diagrams.net CSV importer. The connect
// directive inverts the edges so arrows point at the node listing the
// reference.
const headerTemplate = `## %s
# label: %%component%%
# style: shape=%%shape%%;fillColor=%%fill%%;strokeColor=%%stroke%%;verticalLabelPosition=bottom;
# namespace: csvimport-
# connect: {"from":"refs", "to":"component", "invert":true, "style":"curved=0;endArrow=block;endFill=0;dashed=1;strokeColor=#6c8ebf;"}
# width: 80
# height: 80
# ignore: refs
# nodespacing: 40
# levelspacing: 40
# edgespacing: 40
# layout: horizontaltree
## CSV data starts below this line
component,fill,stroke,shape,refs
`

// Render serializes the node list into the diagrams.net CSV import dialect.
// Nodes are emitted in the order given; validation already happened in the
// builder, so rendering cannot fail.
func Render(title string, nodes []*Node) string {
	var out strings.Builder
	fmt.Fprintf(&out, headerTemplate, title)

	for _, node := range nodes {
		fmt.Fprintf(&out, "%s,%s,%s,%s,%s\n",
			node.Name,
			node.Style.Fill,
			node.Style.Stroke,
			node.Style.Shape,
			strings.Join(node.References, ","),
		)
	}

	return out.String()
}
