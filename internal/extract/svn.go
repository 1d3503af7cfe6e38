package extract

import "github.com/mebigfatguy/vcsversion/internal/domain"

// svn log prints "r42 | user | date | n lines" headers; svn info prints
// "URL: ..." for both the branch and the url.
var svnSteps = []step{
	{
		command: "svn log -l 1",
		patterns: []pattern{
			{domain.PropertyRevision, `([^\s]*)\s+\|.*`},
			{domain.PropertyDate, `[^\|]+\|[^\|]+\|\s*([\|]*).*`},
		},
	},
	{
		command: "svn info",
		patterns: []pattern{
			{domain.PropertyBranch, `url:?.*/(.*)`},
		},
	},
	{
		command: "svn info .",
		patterns: []pattern{
			{domain.PropertyURL, `URL:\s*(.*)`},
		},
	},
}
