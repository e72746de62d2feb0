package models

// ContainerInfo holds Docker container details for the optional section
type ContainerInfo struct {
	ID     string
	Name   string
	Image  string
	Status string
}
