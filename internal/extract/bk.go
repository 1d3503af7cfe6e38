package extract

import "github.com/mebigfatguy/vcsversion/internal/domain"

// BitKeeper has no branches; a requested branch is always set to "".
var bkSteps = []step{
	{
		command: "bk changes -1 -nd:KEY:",
		patterns: []pattern{
			{domain.PropertyRevision, `.*\|ChangeSet\|.*\|(.*)`},
		},
	},
	{
		command: "bk changes -1",
		patterns: []pattern{
			{domain.PropertyDate, `ChangeSet@[^,]*,([^,]*),.*`},
		},
	},
	{
		assign: &assignment{property: domain.PropertyBranch, value: ""},
	},
	{
		command: "bk parent",
		patterns: []pattern{
			{domain.PropertyURL, `\s*Push/pull parent:\s*(.*)`},
		},
	},
}
