package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigKey(t *testing.T) {
	tests := []struct {
		name string
		flag string
		want string
	}{
		{
			name: "single segment",
			flag: "ttl",
			want: "ttl",
		},
		{
			name: "dashed segments",
			flag: "disable-namespace-restriction",
			want: "disableNamespaceRestriction",
		},
		{
			name: "mixed dash and dot delimiters",
			flag: "default.pool.resync-period",
			want: "defaultPoolResyncPeriod",
		},
		{
			name: "provider without acronym correction",
			flag: "aws-route53.dns.pool.size",
			want: "awsRoute53DnsPoolSize",
		},
		{
			name: "azure provider acronym corrected",
			flag: "azure-dns.dns-class",
			want: "azureDNSDnsClass",
		},
		{
			name: "google provider acronym corrected",
			flag: "google-clouddns.ttl",
			want: "googleCloudDNSTtl",
		},
		{
			name: "alicloud provider acronym corrected",
			flag: "alicloud-dns.cache-ttl",
			want: "alicloudDNSCacheTtl",
		},
		{
			name: "ingress source acronym corrected",
			flag: "ingress-dns.targets.pool.size",
			want: "ingressDNSTargetsPoolSize",
		},
		{
			name: "service source acronym corrected",
			flag: "service-dns.key",
			want: "serviceDNSKey",
		},
		{
			name: "dnsentry source has no trailing dns segment",
			flag: "dnsentry-source.target-owner-id",
			want: "dnsentrySourceTargetOwnerId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigKey(tt.flag))
		})
	}
}

func TestConfigKeyDeterministic(t *testing.T) {
	for _, flag := range []string{"ttl", "azure-dns.dns-class", "google-clouddns.setup"} {
		assert.Equal(t, ConfigKey(flag), ConfigKey(flag))
	}
}

func TestCorrectAcronymsIdempotent(t *testing.T) {
	keys := []string{
		"alicloudDNSCacheTtl",
		"azureDNSDnsClass",
		"googleCloudDNSTtl",
		"cloudflareDNSSetup",
		"infobloxDNSPoolSize",
		"ingressDNSKey",
		"serviceDNSTargetNamespace",
		"ttl",
	}
	for _, key := range keys {
		once := CorrectAcronyms(key)
		assert.Equal(t, once, CorrectAcronyms(once), "re-applying correction to %q must be a no-op", key)
	}
}

func TestCorrectAcronymsRewritesNaiveCasing(t *testing.T) {
	tests := map[string]string{
		"alicloudDnsCacheTtl": "alicloudDNSCacheTtl",
		"googleClouddnsTtl":   "googleCloudDNSTtl",
		"cloudflareDnsSetup":  "cloudflareDNSSetup",
		"infobloxDnsPoolSize": "infobloxDNSPoolSize",
	}
	for in, want := range tests {
		assert.Equal(t, want, CorrectAcronyms(in))
	}
}
