package tui

import (
	"github.com/MKhiriev/go-item-service/models"
)

type itemCreatedMsg struct {
	resp models.CreateItemResponse
	err  error
}

type detailsLoadedMsg struct {
	details models.ItemDetails
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
