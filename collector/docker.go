package collector

import (
	"context"
	"os"
	"strings"

	"srvstat/models"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// isDockerEnvironment cek ada docker.sock gak
func isDockerEnvironment() bool {
	_, err := os.Stat("/var/run/docker.sock")
	return err == nil
}

// collectContainers ambil info container yang lagi running (kalo ada Docker).
// Gagal apapun alasannya ya skip aja, report utama tetep jalan.
func collectContainers() []models.ContainerInfo {
	if !isDockerEnvironment() {
		return nil
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil
	}
	defer cli.Close()

	containers, err := cli.ContainerList(context.Background(), container.ListOptions{})
	if err != nil {
		return nil
	}

	var result []models.ContainerInfo
	for _, c := range containers {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		result = append(result, models.ContainerInfo{
			ID:     c.ID[:12], // Short ID
			Name:   name,
			Image:  c.Image,
			Status: c.Status,
		})
	}

	return result
}
