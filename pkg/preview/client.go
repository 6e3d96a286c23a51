package preview

// clientScript is injected into the preview page. It connects to /ws,
// forwards bound DOM events as JSON frames, applies the propagation
// controls the server declared for each binding, and swaps in re-rendered
// HTML from render frames.
const clientScript = `
<script>
(function() {
    'use strict';

    var ws = null;
    var bindings = {};
    var hooked = {};
    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            console.log('[modui] preview connected');
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            switch (msg.type) {
                case 'render':
                    applyRender(msg);
                    break;

                case 'error':
                    console.error('[modui] server error:', msg.error);
                    break;
            }
        };

        ws.onclose = function() {
            console.log('[modui] connection lost, reconnecting in', reconnectDelay + 'ms');
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    function applyRender(msg) {
        var root = document.getElementById('modui-root');
        if (root) {
            root.innerHTML = msg.html;
        }
        bindings = msg.bindings || {};
        hookEvents();
    }

    function hookEvents() {
        Object.keys(bindings).forEach(function(hid) {
            bindings[hid].forEach(function(b) {
                if (hooked[b.event]) {
                    return;
                }
                hooked[b.event] = true;
                document.addEventListener(b.event, function(e) {
                    handleEvent(b.event, e);
                }, true);
            });
        });
    }

    function handleEvent(name, e) {
        var el = e.target && e.target.closest ? e.target.closest('[data-hid]') : null;
        if (!el) {
            return;
        }
        var hid = el.getAttribute('data-hid');
        var list = bindings[hid];
        if (!list) {
            return;
        }

        var matched = false;
        var stop = false;
        var prevent = false;
        list.forEach(function(b) {
            if (b.event === name) {
                matched = true;
                stop = stop || !!b.stop;
                prevent = prevent || !!b.prevent;
            }
        });
        if (!matched) {
            return;
        }

        if (stop) {
            e.stopPropagation();
        }
        if (prevent) {
            e.preventDefault();
        }

        var target = {};
        if (e.target) {
            if (typeof e.target.value !== 'undefined') {
                target.value = String(e.target.value);
            }
            if (typeof e.target.checked !== 'undefined') {
                target.checked = !!e.target.checked;
            }
        }

        if (ws && ws.readyState === WebSocket.OPEN) {
            ws.send(JSON.stringify({type: 'event', hid: hid, event: name, target: target}));
        }
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
</script>
`
