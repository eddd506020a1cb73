package domain

// Хосты Microsoft Update, проверяемые по умолчанию

var DefaultDomains = []string{
	"windowsupdate.microsoft.com",
	"update.microsoft.com",
	"dl.delivery.mp.microsoft.com",
	"sls.update.microsoft.com",
	"fe2.update.microsoft.com",
	"download.windowsupdate.com",
}

// TargetPorts are probed in this order for every resolved address.
var TargetPorts = []int{80, 443}
