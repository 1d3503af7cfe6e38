package extract

import "github.com/mebigfatguy/vcsversion/internal/domain"

var hgSteps = []step{
	{
		command: "hg log -l 1",
		patterns: []pattern{
			{domain.PropertyRevision, `changeset:?\s*(.*)`},
			{domain.PropertyDate, `date:?\s*(.*)`},
		},
	},
	{
		command: "hg branch",
		patterns: []pattern{
			{domain.PropertyBranch, `(.*)`},
		},
	},
	{
		command: "hg paths default",
		patterns: []pattern{
			{domain.PropertyURL, `(.*)`},
		},
	},
}
