package extract

import "github.com/mebigfatguy/vcsversion/internal/domain"

// A single bzr log record carries revno, branch nick and timestamp.
var bzrSteps = []step{
	{
		command: "bzr log -r-1",
		patterns: []pattern{
			{domain.PropertyRevision, `revno:\s*(.*)`},
			{domain.PropertyDate, `timestamp:?\s*(.*)`},
			{domain.PropertyBranch, `branch nick:\s*(.*)`},
		},
	},
	{
		command: "bzr info -v",
		patterns: []pattern{
			{domain.PropertyURL, `\s*parent branch:\s*(.*)`},
		},
	},
}
