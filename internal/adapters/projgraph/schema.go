package projgraph

import "encoding/xml"

// projectFile is the subset of an MSBuild-style project file the graph
// builder cares about.
type projectFile struct {
	XMLName    xml.Name    `xml:"Project"`
	ItemGroups []itemGroup `xml:"ItemGroup"`
}

type itemGroup struct {
	ProjectReferences []projectReference `xml:"ProjectReference"`
}

type projectReference struct {
	Include string `xml:"Include,attr"`
}
