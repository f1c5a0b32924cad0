package devserver

// ClientScript is the bootstrap script embedded in the page. It opens the
// session socket, applies frames and forwards events by node id.
const ClientScript = `
(function() {
    'use strict';

    var ATTR = 'data-wid';
    var EVENTS = ['click', 'dblclick', 'input', 'change', 'submit', 'keydown', 'focusin', 'focusout'];
    var ws = null;

    function node(id) {
        return document.querySelector('[' + ATTR + '="' + id + '"]');
    }

    function apply(f) {
        var el = node(f.id);
        if (!el) {
            return;
        }
        switch (f.op) {
            case 'html':
                el.innerHTML = f.html || '';
                break;
            case 'text':
                el.textContent = f.value || '';
                break;
            case 'attr':
                el.setAttribute(f.name, f.value || '');
                if (f.name === 'value' && 'value' in el) {
                    el.value = f.value || '';
                }
                break;
            case 'remove-attr':
                el.removeAttribute(f.name);
                break;
        }
    }

    function forward(e) {
        if (!ws || ws.readyState !== 1) {
            return;
        }
        var el = e.target.closest ? e.target.closest('[' + ATTR + ']') : null;
        if (!el) {
            return;
        }
        if (e.type === 'submit') {
            e.preventDefault();
        }
        var msg = {type: 'event', id: Number(el.getAttribute(ATTR)), event: e.type};
        if (e.type === 'input' || e.type === 'change') {
            msg.detail = e.target.type === 'checkbox' ? e.target.checked : e.target.value;
        } else if (e.type === 'keydown') {
            msg.detail = e.key;
        }
        ws.send(JSON.stringify(msg));
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/ws');
        ws.onmessage = function(e) {
            var f;
            try {
                f = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            if (f.session) {
                document.body.setAttribute(ATTR, f.id);
            }
            apply(f);
        };
        ws.onclose = function() {
            setTimeout(connect, 1000);
        };
    }

    EVENTS.forEach(function(type) {
        document.addEventListener(type, forward, true);
    });
    connect();
})();
`
