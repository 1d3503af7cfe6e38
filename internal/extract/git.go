package extract

import "github.com/mebigfatguy/vcsversion/internal/domain"

// git branch marks the checked out branch with "*".
var gitSteps = []step{
	{
		command: "git log -n 1",
		patterns: []pattern{
			{domain.PropertyRevision, `commit:?\s*(.*)`},
			{domain.PropertyDate, `date:?\s*(.*)`},
		},
	},
	{
		command: "git branch",
		patterns: []pattern{
			{domain.PropertyBranch, `\*\s*(.*)`},
		},
	},
	{
		command: "git config --get remote.origin.url",
		patterns: []pattern{
			{domain.PropertyURL, `(.*)`},
		},
	},
}
