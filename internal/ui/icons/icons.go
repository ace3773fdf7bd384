package icons

import (
	"log"

	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	IconSeal         *widget.Icon
	IconSign         *widget.Icon
	IconCertificates *widget.Icon
	IconHistory      *widget.Icon
	IconInfo         *widget.Icon
	IconFolder       *widget.Icon
	IconRefresh      *widget.Icon
	IconCheck        *widget.Icon
	IconError        *widget.Icon
	IconWarning      *widget.Icon
	IconLaunch       *widget.Icon
)

func init() {
	loadIcon := func(data []byte, name string) *widget.Icon {
		ic, err := widget.NewIcon(data)
		if err != nil {
			log.Printf("Failed to load %s: %v", name, err)
		}
		return ic
	}

	IconSeal = loadIcon(icons.ActionVerifiedUser, "IconSeal")
	IconSign = loadIcon(icons.ContentCreate, "IconSign")
	IconCertificates = loadIcon(icons.ActionAccountBox, "IconCertificates")
	IconHistory = loadIcon(icons.ActionHistory, "IconHistory")
	IconInfo = loadIcon(icons.ActionInfo, "IconInfo")
	IconFolder = loadIcon(icons.FileFolderOpen, "IconFolder")
	IconRefresh = loadIcon(icons.NavigationRefresh, "IconRefresh")
	IconCheck = loadIcon(icons.ActionCheckCircle, "IconCheck")
	IconError = loadIcon(icons.AlertError, "IconError")
	IconWarning = loadIcon(icons.AlertWarning, "IconWarning")
	IconLaunch = loadIcon(icons.ActionLaunch, "IconLaunch")
}
