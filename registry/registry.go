package registry

import (
	"fmt"

	"github.com/hashicorp/consul/api"
)

// Reg ตัวลงทะเบียน service กับ consul
var Reg *consulRegistry

type consulRegistry struct {
	client *api.Client
}

// Init เชื่อมต่อ consul agent
func Init(addr string) (err error) {
	cfg := api.DefaultConfig()
	cfg.Address = addr
	client, err := api.NewClient(cfg)
	if err != nil {
		return err
	}
	Reg = &consulRegistry{client: client}
	return nil
}

// RegisterService ลงทะเบียน service พร้อม HTTP health check
func (r *consulRegistry) RegisterService(serviceName, ip string, port int, tags []string) error {
	srv := &api.AgentServiceRegistration{
		ID:      fmt.Sprintf("%s-%s-%d", serviceName, ip, port),
		Name:    serviceName,
		Tags:    tags,
		Address: ip,
		Port:    port,
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", ip, port),
			Timeout:                        "5s",
			Interval:                       "10s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}
	return r.client.Agent().ServiceRegister(srv)
}

// Deregister ถอน service ออกตอน shutdown
func (r *consulRegistry) Deregister(serviceID string) error {
	return r.client.Agent().ServiceDeregister(serviceID)
}
